// Package models содержит доменные модели кадрового сервиса:
// пользователей, профиль компании и проекты с геолокацией.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout — формат календарной даты в JSON и в текстовом представлении.
const DateLayout = "2006-01-02"

// DayTimeLayout — формат времени суток в JSON и в текстовом представлении.
const DayTimeLayout = "15:04:05"

// Date представляет календарную дату без времени суток,
// например дату найма или дату окончания испытательного срока.
type Date struct {
	time.Time
}

// NewDate создает Date из года, месяца и дня.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает дату из строки формата DateLayout.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date: %w", err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON сериализует дату в строку формата DateLayout.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON разбирает дату из JSON-строки формата DateLayout.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DayTime представляет время суток без даты,
// например начало и конец рабочего дня.
type DayTime struct {
	time.Time
}

// NewDayTime создает DayTime из часов, минут и секунд.
func NewDayTime(hour, minute, second int) DayTime {
	return DayTime{Time: time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)}
}

// ParseDayTime разбирает время суток из строки формата DayTimeLayout.
func ParseDayTime(value string) (DayTime, error) {
	t, err := time.Parse(DayTimeLayout, value)
	if err != nil {
		return DayTime{}, fmt.Errorf("parse day time: %w", err)
	}
	return DayTime{Time: t}, nil
}

func (d DayTime) String() string {
	return d.Format(DayTimeLayout)
}

// MarshalJSON сериализует время суток в строку формата DayTimeLayout.
func (d DayTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DayTimeLayout))
}

// UnmarshalJSON разбирает время суток из JSON-строки формата DayTimeLayout.
func (d *DayTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDayTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
