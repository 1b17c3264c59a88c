package dto

type ListConversationsRequest struct {
	// first and cursor are accepted for pagination compatibility but not
	// applied; the page always spans the full result set.
	First        *int    `json:"first"`
	Cursor       *string `json:"cursor"`
	WithFeedback *int    `json:"withFeedback"`
	Username     *string `json:"username"`
	Search       *string `json:"search"`
}

type GetConversationRequest struct {
	Id NumericID `json:"id" validate:"required"`
}

type CreateConversationRequest struct {
	AppUserId *NumericID `json:"appUserId"`
	Tags      []string   `json:"tags"`
}

type UpdateConversationRequest struct {
	Id NumericID `json:"id" validate:"required"`
	// nil means "leave tags untouched"; an empty list overwrites.
	Tags *[]string `json:"tags"`
}

type DeleteConversationRequest struct {
	Id NumericID `json:"id" validate:"required"`
}

type ConversationPayload struct {
	Id        string                 `json:"id"`
	CreatedAt int64                  `json:"createdAt"`
	AppUser   AppUserPayload         `json:"appUser"`
	Tags      []string               `json:"tags"`
	Metadata  map[string]interface{} `json:"metadata"`
	Messages  []MessagePayload       `json:"messages"`
	Elements  []ElementPayload       `json:"elements"`
}

type PageInfo struct {
	EndCursor   *string `json:"endCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

type ConversationEdge struct {
	Node   ConversationPayload `json:"node"`
	Cursor string              `json:"cursor"`
}

type PaginatedConversations struct {
	PageInfo PageInfo           `json:"pageInfo"`
	Edges    []ConversationEdge `json:"edges"`
}

type DeleteConversationPayload struct {
	Id string `json:"id"`
}
