package ports

type Mailer interface {
	SendVerification(name, email, userID string) error
}
