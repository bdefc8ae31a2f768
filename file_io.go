/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import (
	"io"
	"os"
)

// WriteOpenType writes the subset's raw sfnt bytes to w.
func (s *FontSubset) WriteOpenType(w io.Writer) error {
	_, err := w.Write(s.ToOpenType())
	return err
}

// WriteOpenTypeFile writes the subset's raw sfnt bytes to outPath.
func (s *FontSubset) WriteOpenTypeFile(outPath string) error {
	of, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer of.Close()
	return s.WriteOpenType(of)
}

// WriteWOFF2 writes the subset's WOFF2 bytes to w.
func (s *FontSubset) WriteWOFF2(w io.Writer) error {
	data, err := s.ToWOFF2()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteWOFF2File writes the subset's WOFF2 bytes to outPath.
func (s *FontSubset) WriteWOFF2File(outPath string) error {
	of, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer of.Close()
	return s.WriteWOFF2(of)
}
