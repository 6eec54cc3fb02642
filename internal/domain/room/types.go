package room

// Status tracks housekeeping and availability state.
type Status string

const (
	StatusClean        Status = "clean"
	StatusDirty        Status = "dirty"
	StatusCleaning     Status = "cleaning"
	StatusBusy         Status = "busy"
	StatusAvailable    Status = "available"
	StatusDiscontinued Status = "discontinued"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusClean, StatusDirty, StatusCleaning, StatusBusy, StatusAvailable, StatusDiscontinued:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type RoomType string

const (
	TypeUnknown   RoomType = "unknown"
	TypeSingle    RoomType = "single"
	TypeDouble    RoomType = "double"
	TypeTriple    RoomType = "triple"
	TypeQuadruple RoomType = "quadruple"
	TypeSuite     RoomType = "suite"
)

func (t RoomType) String() string {
	return string(t)
}

func (t RoomType) IsValid() bool {
	switch t {
	case TypeUnknown, TypeSingle, TypeDouble, TypeTriple, TypeQuadruple, TypeSuite:
		return true
	default:
		return false
	}
}

func NewRoomType(s string) (RoomType, error) {
	roomType := RoomType(s)
	if !roomType.IsValid() {
		return "", ErrInvalidRoomType
	}
	return roomType, nil
}
