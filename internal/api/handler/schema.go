package handler

// --- Requests ---

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Price and Stock are pointers so an explicit zero passes "required".
type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	ProductCode string   `json:"product_code" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Stock       *int64   `json:"stock" validate:"required"`
}

// --- Responses ---

type messageResponse struct {
	Message string `json:"message"`
}

type sessionUser struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type signinResponse struct {
	Message string      `json:"message"`
	User    sessionUser `json:"user"`
}

type rootResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
