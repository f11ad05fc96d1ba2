package request

import "student-travels/internal/usecase/commands"

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

func (r *CreateCategoryRequest) ToCommand() commands.CreateCategoryRequest {
	return commands.CreateCategoryRequest{Name: r.Name, Description: r.Description}
}
