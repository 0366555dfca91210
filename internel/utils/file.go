package utils

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadBinary reads a little-endian array of fixed-size values.
func ReadBinary[T any](filename string) ([]T, error) {

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	size := binary.Size(*new(T))
	if size <= 0 {
		return nil, fmt.Errorf("unsupported element type %T", *new(T))
	}
	if fileInfo.Size()%int64(size) != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of %d", fileInfo.Size(), size)
	}

	data := make([]T, int(fileInfo.Size())/size)
	err = binary.Read(bufio.NewReader(file), binary.LittleEndian, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// WriteBinary writes data as a little-endian array, no header.
func WriteBinary[T any](filename string, data []T) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	err = binary.Write(w, binary.LittleEndian, data)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return file.Close()
}

func ReadTxt[T any](filename string) ([]T, error) {

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	var data []T
	for {
		var element T
		_, err := fmt.Fscan(r, &element)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		data = append(data, element)
	}

	return data, nil
}

// WriteTxt writes one line per element, formatted by f.
func WriteTxt[V, T any](filename string, data []T, f func(T) V) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, element := range data {
		_, err := fmt.Fprintln(w, f(element))
		if err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return file.Close()
}
