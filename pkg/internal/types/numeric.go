package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Float 数值字段，接受 JSON 数字或数字字符串（"120.5"）.
// 前端表单字段经常以字符串提交，入库前统一强转.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0

		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", s, err)
	}

	*f = Float(v)

	return nil
}

// Ptr 转为 *float64，接收者为 nil 时返回 nil.
func (f *Float) Ptr() *float64 {
	if f == nil {
		return nil
	}

	v := float64(*f)

	return &v
}

// Int 整数字段，接受 JSON 数字或数字字符串（"3"）.
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*i = 0

		return nil
	}

	// 容忍 "3.0" 这类浮点写法
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q: %w", s, err)
	}

	*i = Int(int(v))

	return nil
}

// Ptr 转为 *int，接收者为 nil 时返回 nil.
func (i *Int) Ptr() *int {
	if i == nil {
		return nil
	}

	v := int(*i)

	return &v
}
