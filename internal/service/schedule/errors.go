package schedule

import "errors"

var (
	// ErrShopNotFound возвращается, когда магазин не найден
	ErrShopNotFound = errors.New("shop not found")

	// ErrItemNotFound возвращается, когда позиция не найдена
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNotInShop возвращается, когда позиция принадлежит другому магазину
	ErrItemNotInShop = errors.New("item does not belong to this shop")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
