package request

type Register struct {
	Username string `json:"username" binding:"required,min=3,max=45"`
	Password string `json:"password" binding:"required,min=8"`
}

type Login struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
