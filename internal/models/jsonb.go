package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbValue сериализует значение для записи в колонку jsonb.
func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("models: не удалось сериализовать jsonb: %w", err)
	}
	return data, nil
}

// jsonbScan читает значение jsonb колонки в целевую структуру.
// NULL в базе оставляет целевое значение нетронутым.
func jsonbScan(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("models: неподдерживаемый тип jsonb колонки %T", src)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("models: не удалось разобрать jsonb: %w", err)
	}
	return nil
}
