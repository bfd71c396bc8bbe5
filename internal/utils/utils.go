package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/takoeight0821/fredlang/internal/token"
	"gopkg.in/yaml.v3"
)

// PosError attaches the offending token to an error.
type PosError struct {
	Where token.Token
	Err   error
}

func (e PosError) Error() string {
	return fmt.Sprintf("at %d: `%s`, %s", e.Where.Line, e.Where.Lexeme, e.Err.Error())
}

func (e PosError) Unwrap() error {
	return e.Err
}

// ErrorAt wraps err with the position of where.
func ErrorAt(where token.Token, err error) error {
	return PosError{Where: where, Err: err}
}

// SourceExt is the file extension of fredlang source files.
const SourceExt = ".fred"

// FindSourceFiles returns every source file under dir, sorted by path.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	return files, nil
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}
