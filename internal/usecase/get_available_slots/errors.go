package get_available_slots

import "errors"

var (
	// ErrShopNotFound возвращается, когда магазин не найден
	ErrShopNotFound = errors.New("get_available_slots: shop not found")

	// ErrItemNotFound возвращается, когда позиция не найдена
	ErrItemNotFound = errors.New("get_available_slots: item not found")

	// ErrItemNotInShop возвращается, когда позиция принадлежит другому магазину
	ErrItemNotInShop = errors.New("get_available_slots: item does not belong to this shop")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
