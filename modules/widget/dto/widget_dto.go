package dto

import "encoding/json"

type WidgetValue struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type SetWidgetRequest struct {
	Value json.RawMessage `json:"value"`
}
