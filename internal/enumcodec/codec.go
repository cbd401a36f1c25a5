package enumcodec

import (
	"errors"
	"fmt"
	"sort"
)

// UnknownLabel подпись по умолчанию для кодов, отсутствующих в таблице
const UnknownLabel = "Unknown"

var (
	// ErrDuplicateCode возвращается, когда в таблице один код встречается дважды
	ErrDuplicateCode = errors.New("enumcodec: duplicate code")

	// ErrDuplicateLabel возвращается, когда в таблице одна подпись встречается дважды
	ErrDuplicateLabel = errors.New("enumcodec: duplicate label")

	// ErrEmptyLabel возвращается для пустой подписи
	ErrEmptyLabel = errors.New("enumcodec: empty label")
)

// Kind вид перечисления (тип топлива, тип кузова)
type Kind string

// Entry пара код/подпись
type Entry struct {
	Code  int
	Label string
}

// Codec двунаправленное отображение между числовыми кодами API и подписями UI.
// После создания не изменяется, поэтому безопасен для конкурентного использования.
type Codec struct {
	forward  map[Kind]map[int]string
	reverse  map[Kind]map[string]int
	options  map[Kind][]Entry
	fallback string
}

// Option настройка кодека
type Option func(*Codec)

// WithFallback задает подпись для незарегистрированных кодов
func WithFallback(label string) Option {
	return func(c *Codec) {
		if label != "" {
			c.fallback = label
		}
	}
}

// New строит кодек из фиксированных таблиц.
// Обратные таблицы строятся из прямых один раз; дубликаты кодов или подписей - ошибка.
func New(tables map[Kind][]Entry, opts ...Option) (*Codec, error) {
	c := &Codec{
		forward:  make(map[Kind]map[int]string, len(tables)),
		reverse:  make(map[Kind]map[string]int, len(tables)),
		options:  make(map[Kind][]Entry, len(tables)),
		fallback: UnknownLabel,
	}

	for kind, entries := range tables {
		forward := make(map[int]string, len(entries))
		reverse := make(map[string]int, len(entries))

		for _, e := range entries {
			if e.Label == "" {
				return nil, fmt.Errorf("%w: kind=%s, code=%d", ErrEmptyLabel, kind, e.Code)
			}
			if _, ok := forward[e.Code]; ok {
				return nil, fmt.Errorf("%w: kind=%s, code=%d", ErrDuplicateCode, kind, e.Code)
			}
			if _, ok := reverse[e.Label]; ok {
				return nil, fmt.Errorf("%w: kind=%s, label=%q", ErrDuplicateLabel, kind, e.Label)
			}
			forward[e.Code] = e.Label
			reverse[e.Label] = e.Code
		}

		sorted := make([]Entry, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

		c.forward[kind] = forward
		c.reverse[kind] = reverse
		c.options[kind] = sorted
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNew как New, но паникует при ошибке. Для таблиц, заданных в коде.
func MustNew(tables map[Kind][]Entry, opts ...Option) *Codec {
	c, err := New(tables, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Decode возвращает подпись для кода. Незарегистрированный код не ошибка:
// возвращается подпись по умолчанию.
func (c *Codec) Decode(code int, kind Kind) string {
	if label, ok := c.forward[kind][code]; ok {
		return label
	}
	return c.fallback
}

// Encode возвращает код для подписи. ok == false означает, что подпись не зарегистрирована;
// код 0 при ok == true - обычное допустимое значение.
func (c *Codec) Encode(label string, kind Kind) (code int, ok bool) {
	code, ok = c.reverse[kind][label]
	return code, ok
}

// Has сообщает, зарегистрирован ли код
func (c *Codec) Has(code int, kind Kind) bool {
	_, ok := c.forward[kind][code]
	return ok
}

// Options возвращает зарегистрированные пары, отсортированные по коду
func (c *Codec) Options(kind Kind) []Entry {
	entries := c.options[kind]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Fallback возвращает подпись для незарегистрированных кодов
func (c *Codec) Fallback() string {
	return c.fallback
}

// WithFallback возвращает копию кодека с другой подписью по умолчанию.
// Таблицы разделяются между копиями: они не изменяются после New.
func (c *Codec) WithFallback(label string) *Codec {
	clone := *c
	if label != "" {
		clone.fallback = label
	}
	return &clone
}
