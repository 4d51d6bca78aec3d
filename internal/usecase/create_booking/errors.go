package create_booking

import "errors"

var (
	// ErrShopNotFound возвращается, когда магазин не найден
	ErrShopNotFound = errors.New("create_booking: shop not found")

	// ErrItemNotFound возвращается, когда позиция не найдена
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemNotInShop возвращается, когда позиция принадлежит другому магазину
	ErrItemNotInShop = errors.New("create_booking: item does not belong to this shop")

	// ErrExtraNotFound возвращается, когда запрошенная доп. услуга не найдена у позиции
	ErrExtraNotFound = errors.New("create_booking: extra not found for this item")

	// ErrExtraRequiresItem возвращается, когда доп. услуга привязана к другой позиции
	ErrExtraRequiresItem = errors.New("create_booking: extra requires a different item")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSameDayBookingNotAllowed возвращается, когда бронирование на сегодня запрещено
	ErrSameDayBookingNotAllowed = errors.New("create_booking: same-day booking is not allowed")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrShopClosed возвращается, когда магазин закрыт в указанную дату
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrSlotNotOffered возвращается, когда запрошенное время не входит в
	// список слотов, предлагаемых расписанием на эту дату
	ErrSlotNotOffered = errors.New("create_booking: slot is not offered on this date")

	// ErrTooLateToBook возвращается, когда попытка забронировать слот нарушает minAdvanceHours
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrPartySizeOutOfBounds возвращается, когда количество человек вне границ слота
	ErrPartySizeOutOfBounds = errors.New("create_booking: party size out of bounds for this slot")

	// ErrSlotAlreadyTaken возвращается, когда эксклюзивный слот уже занят
	ErrSlotAlreadyTaken = errors.New("create_booking: slot is already taken")

	// ErrCapacityExceeded возвращается, когда в слоте не хватает мест для группы
	ErrCapacityExceeded = errors.New("create_booking: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
