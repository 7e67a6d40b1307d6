package querybuilder

import (
	"fmt"
	"reflect"
)

// InsertModel builds an insert for a struct using its db tags.
// Fields tagged `db:"-"` or without a db tag are skipped.
func InsertModel(table string, model any) *InsertBuilder {
	columns, values := modelColumns(model)
	return InsertInto(table).Columns(columns...).Values(values...)
}

func modelColumns(model any) ([]string, []any) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		panic(fmt.Sprintf("querybuilder: InsertModel expects a struct, got %T", model))
	}

	t := v.Type()
	columns := make([]string, 0, t.NumField())
	values := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tag)
		values = append(values, v.Field(i).Interface())
	}
	return columns, values
}
