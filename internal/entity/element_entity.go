package entity

type Element struct {
	Id             int64
	ConversationId int64
	Type           string
	Name           string
	Mime           *string
	Url            *string
	Display        *string
	Language       *string
	Size           *string
	ForIds         []string
	ObjectKey      *string
}
