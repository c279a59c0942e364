// Package parquetio writes result frames to Parquet via the parquet-go
// JSONWriter.
package parquetio

import (
	"encoding/json"
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

func parquetSchemaJSON(s p.Schema) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case p.KindFloat:
			tag += "DOUBLE"
		case p.KindInt:
			tag += "INT64"
		case p.KindBool:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteAll writes a Frame to a Parquet file.
func WriteAll(path string, f *p.Frame) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	schema := parquetSchemaJSON(f.Schema())
	writer, err := pw.NewJSONWriter(schema, fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}
	defer func() { _ = writer.WriteStop(); _ = fw.Close() }()
	for r := 0; r < f.Rows(); r++ {
		rec := make(map[string]any, len(f.Schema().Columns))
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case p.KindFloat:
				if v, ok := col.(*p.FloatColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case p.KindInt:
				if v, ok := col.(*p.IntColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case p.KindBool:
				if v, ok := col.(*p.BoolColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case p.KindString:
				if v, ok := col.(*p.StringColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			}
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("parquet write row: %w", err)
		}
	}
	return nil
}
