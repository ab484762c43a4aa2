package main

import (
	"io"

	"gopkg.in/yaml.v3"
)

type Answer struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// Report collects the answers of one solver run.
type Report struct {
	Day     int      `yaml:"day"`
	Answers []Answer `yaml:"answers"`
}

func (r *Report) Add(name string, value int64) {
	r.Answers = append(r.Answers, Answer{name, value})
}

func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "", "text":
		for _, a := range r.Answers {
			fprintf(w, "%v: %v\n", a.Name, a.Value)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errorf("unknown format %q", format)
	}
}
