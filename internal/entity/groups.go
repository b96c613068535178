package entity

import (
	"bytes"
	"encoding/json"
)

// FileGroups is an ordered mapping of variable name to its files.
type FileGroups struct {
	keys   []string
	groups map[string][]*File
}

func NewFileGroups() *FileGroups {
	return &FileGroups{groups: make(map[string][]*File)}
}

func (g *FileGroups) Add(variable string, file *File) {
	if _, exists := g.groups[variable]; !exists {
		g.keys = append(g.keys, variable)
	}

	g.groups[variable] = append(g.groups[variable], file)
}

// Keys returns variable names in insertion order.
func (g *FileGroups) Keys() []string {
	return g.keys
}

func (g *FileGroups) Get(variable string) []*File {
	return g.groups[variable]
}

func (g *FileGroups) Len() int {
	return len(g.keys)
}

func (g *FileGroups) FileCount() int {
	var n int
	for _, files := range g.groups {
		n += len(files)
	}

	return n
}

// MarshalJSON keeps insertion order of the variables.
func (g *FileGroups) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')

	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(g.groups[key])
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
