package dto

type ErrorResponse struct {
	Message string `json:"message"`
}

type IssueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type CreateUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type CreateMenuItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
}

type CreateReviewRequest struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

type AddCartItemRequest struct {
	Email      string  `json:"email"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	CartItemIDs   []string `json:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds"`
}

// InsertResult and DeleteResult mirror the acknowledgment shape the
// frontend already consumes from the previous backend.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type RecordPaymentResponse struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
