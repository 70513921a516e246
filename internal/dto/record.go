package dto

// RawRecord is the wire shape of one internal-json log document.
// Pointer fields distinguish "absent" from a zero value.
// It uses "mapstructure" tags so it can be decoded from the generic
// document produced by encoding/json.
type RawRecord struct {
	Action *string `mapstructure:"action"`
	Level  *uint8  `mapstructure:"level"`
	Msg    *string `mapstructure:"msg"`
	ID     *uint64 `mapstructure:"id"`
	Parent *uint64 `mapstructure:"parent"`
	Text   *string `mapstructure:"text"`
	Type   *uint64 `mapstructure:"type"`
	Fields []any   `mapstructure:"fields"`
}
