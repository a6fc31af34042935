package config

import "errors"

// ErrInvalidConfig возвращается, когда значение конфига вне допустимого диапазона
var ErrInvalidConfig = errors.New("config: invalid configuration")
