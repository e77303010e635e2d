package models

import (
	"github.com/go-playground/validator/v10"

	"inkwell/app/apperr"
)

var validate = validator.New()

// Per-field messages surfaced on a 422. One message per violated field,
// regardless of which constraint on the field failed.
var fieldMessages = map[string]string{
	"User.Name":         "Name cannot be empty",
	"User.Email":        "Email cannot be empty",
	"User.PasswordHash": "Password cannot be empty",
	"Post.Title":      "Your title should be between 3 and 50 characters",
	"Post.Content":    "Your post content must be between 1 and 500 characters",
	"Comment.Content": "Your comment must be between 1 and 500 characters",
	"Comment.PostID":  "Comment must belong to a post",
	"Post.UserID":     "Post must have an owner",
	"Comment.UserID":  "Comment must have an owner",
}

// translate maps validator failures onto the per-field messages above.
func translate(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Unexpected(err)
	}

	var fields []string
	for _, fe := range verrs {
		key := fe.StructNamespace()
		if msg, ok := fieldMessages[key]; ok {
			fields = append(fields, msg)
		} else {
			fields = append(fields, fe.Error())
		}
	}
	return apperr.Validation(fields...)
}
