// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/randomhashd/fault"
)

// DataDirectory - resolve the data directory named in a configuration
// file, "." means the directory holding the file
//
// the directory must already exist
func DataDirectory(configurationFileName string, directory string) (string, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}

	switch directory {
	case "", "~":
		return "", fault.ErrConfigurationInvalidDir
	case ".":
		directory, _ = filepath.Split(configurationFileName)
	}
	directory = EnsureAbsolute(filepath.Dir(configurationFileName), directory)

	fileInfo, err := os.Stat(directory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fault.ErrNotADirectory
	}
	return directory, nil
}

// EnsureAbsolute - if the path is not absolute prepend the directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// PlainFilename - check that the name has no directory part
func PlainFilename(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fault.ErrNotAPlainFilename
	}
}

// MakeDirectory - absolute form of a directory, created if missing
func MakeDirectory(base string, directory string) (string, error) {
	directory = EnsureAbsolute(base, directory)
	if err := os.MkdirAll(directory, 0o700); nil != err {
		return "", err
	}
	return directory, nil
}
