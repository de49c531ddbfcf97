package file

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Exists reports whether path exists (file or directory).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFromJSON reads a JSON file and returns its contents as a map.
// Missing or empty files are reported as errors so callers can fall back
// to a default configuration.
func ReadFromJSON(jsonFile string) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	if _, err := os.Stat(jsonFile); os.IsNotExist(err) {
		return result, fmt.Errorf("file does not exist: %s", jsonFile)
	}

	file, err := os.Open(jsonFile)
	if err != nil {
		return result, err
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return result, err
	}
	if fileInfo.Size() == 0 {
		return result, fmt.Errorf("file is empty: %s", jsonFile)
	}

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&result); err != nil {
		return result, err
	}

	return result, nil
}

// WriteToJSON writes a map to a JSON file with the specified indentation.
func WriteToJSON(jsonFile string, data map[string]interface{}, indent int) error {
	file, err := os.Create(jsonFile)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", strings.Repeat(" ", indent))

	if err := encoder.Encode(data); err != nil {
		return err
	}

	return nil
}

// Append appends a string to the end of file dst, creating it if needed.
func Append(data string, dst string) error {
	dstFile, err := os.OpenFile(dst, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file %s for appending: %w", dst, err)
	}
	defer dstFile.Close()

	_, err = dstFile.WriteString(data)
	return err
}
