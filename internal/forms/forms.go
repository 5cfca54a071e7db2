// Package forms описывает формы регистрации, входа и отзыва
// и проверяет их поля до передачи данных в бизнес-логику.
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
)

var validate = validator.New()

// RegisterForm — форма регистрации пользователя.
type RegisterForm struct {
	Username  string `json:"username" validate:"required,min=5,max=20"`
	Password  string `json:"password" validate:"required,min=8,max=30"`
	Email     string `json:"email" validate:"required,email,max=50"`
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
}

// Validate проверяет ограничения полей формы регистрации.
func (f RegisterForm) Validate() error {
	return translate(validate.Struct(f))
}

// LoginForm — форма аутентификации пользователя.
type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate проверяет, что оба поля заполнены.
func (f LoginForm) Validate() error {
	return translate(validate.Struct(f))
}

// FeedbackForm — форма создания и редактирования отзыва.
type FeedbackForm struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// Validate проверяет ограничения полей отзыва.
func (f FeedbackForm) Validate() error {
	return translate(validate.Struct(f))
}

// translate переводит ошибки validator в доменные ValidationErrors,
// чтобы вышележащие слои не зависели от библиотеки валидации.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(domain.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.ValidationError{
			Field:   fieldName(fe),
			Message: message(fe),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Username":
		return "username"
	case "Password":
		return "password"
	case "Email":
		return "email"
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	case "Title":
		return "title"
	case "Content":
		return "content"
	default:
		return fe.Field()
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "поле обязательно"
	case "min":
		return fmt.Sprintf("минимальная длина %s символов", fe.Param())
	case "max":
		return fmt.Sprintf("максимальная длина %s символов", fe.Param())
	case "email":
		return "некорректный адрес электронной почты"
	default:
		return "недопустимое значение"
	}
}
