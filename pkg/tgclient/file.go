package tgclient

// PhotoSource источник фотографии для sendPhoto
// Два варианта: FileURL (удалённая ссылка, передаётся как строковый параметр)
// и FilePath (локальный файл, отправляется как multipart вложение)
type PhotoSource interface {
	photoSource()
}

// FileURL удалённая ссылка на фото
// Передаётся в Telegram как обычный строковый параметр photo;
// локальная файловая система при этом не проверяется
type FileURL string

func (FileURL) photoSource() {}

// FilePath путь к локальному файлу фото
// Builder проверяет существование файла до любого сетевого вызова
// и формирует multipart тело запроса
type FilePath string

func (FilePath) photoSource() {}
