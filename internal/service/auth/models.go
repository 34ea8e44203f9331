package auth

// Outcome исход попытки входа
type Outcome string

const (
	// OutcomePending пароль совпал, вход завершится после задержки
	OutcomePending Outcome = "pending"
	// OutcomeRejected пароль не совпал, выставлен флаг ошибки
	OutcomeRejected Outcome = "rejected"
)

// Credentials пара логин/пароль
type Credentials struct {
	Login    string
	Password string
}

// State снимок состояния формы входа
// Текст пароля наружу не отдается
type State struct {
	Login         string
	Loading       bool
	Error         bool
	Authenticated bool
}
