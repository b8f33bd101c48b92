package domain

type Client struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
}
