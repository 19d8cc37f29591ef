package discovery

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var extensions = map[string]ReportKind{
	".txt": Text,
	".log": Text,
	".xml": XML,
}

// DetectReportFiles lista os relatórios de ferramentas no diretório (sem
// recursão), ordenados por nome. Diretório inexistente não é erro.
func DetectReportFiles(dir string) ([]ReportFile, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []ReportFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		kind, ok := extensions[strings.ToLower(filepath.Ext(e.Name()))]
		if !ok {
			continue
		}
		files = append(files, ReportFile{
			Kind: kind,
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Exists informa se o relatório existe e é um arquivo regular.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// MatchReportFiles lista os arquivos regulares do diretório cujo nome casa
// com o glob, ordenados por nome.
func MatchReportFiles(dir, pattern string) ([]ReportFile, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []ReportFile
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); !ok {
			continue
		}
		kind, ok := extensions[strings.ToLower(filepath.Ext(e.Name()))]
		if !ok {
			kind = Text
		}
		files = append(files, ReportFile{
			Kind: kind,
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
