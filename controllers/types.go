package controllers

import "github.com/foundanand/trackmygov/utils"

type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields []utils.FieldError `json:"fields,omitempty"`
}
