package util

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SaveTempFile : сохраняет загруженный файл во временную директорию и возвращает путь к нему
func SaveTempFile(src io.Reader, filename string) (string, error) {
	uploadDir := filepath.Join(os.TempDir(), "videotube-uploads")

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("ошибка создания директории: %w", err)
	}

	uniqueName := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], filepath.Ext(filename))
	tmpPath := filepath.Join(uploadDir, uniqueName)

	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("ошибка создания файла: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("ошибка записи файла: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("ошибка закрытия файла: %w", err)
	}

	return tmpPath, nil
}

// SaveFormFile : сохраняет файл из multipart-формы, пустой путь если поля нет
func SaveFormFile(form *multipart.Form, field string) (string, error) {
	if form == nil || len(form.File[field]) == 0 {
		return "", nil
	}

	header := form.File[field][0]
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("ошибка открытия файла %s: %w", field, err)
	}
	defer file.Close()

	return SaveTempFile(file, header.Filename)
}

// RemoveTempFiles : удаляет временные файлы, уже удалённые пропускаются
func RemoveTempFiles(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			Logger.Warn().Err(err).Str("path", path).Msg("не удалось удалить временный файл")
		}
	}
}
