package tools

import (
	"context"

	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

type upsertExperienceTool struct {
	client *linkedin.Client
}

func (t upsertExperienceTool) Specification() Specification {
	return Specification{
		Name:        "upsert_experience",
		Description: "Create or update an experience entry on the authenticated member's profile. Pass position_id to update in place.",
		InputSchema: &InputSchema{
			Type:     "object",
			Required: []string{"title", "company"},
			Properties: map[string]ParameterObject{
				"position_id": {
					Type:        "string",
					Description: "Identifier of an existing position. Omit to create a new one.",
				},
				"title": {
					Type:        "string",
					Description: "Position title.",
				},
				"company": {
					Type:        "string",
					Description: "Company name.",
				},
				"employment_type": {
					Type:        "string",
					Description: "Optional employment type, e.g. FULL_TIME.",
				},
				"location": {
					Type:        "string",
					Description: "Optional location name.",
				},
				"description": {
					Type:        "string",
					Description: "Optional position description.",
				},
				"start_year": {
					Type:        "number",
					Description: "Start year. A date is included only when its year is set.",
				},
				"start_month": {
					Type:        "number",
					Description: "Start month (1-12).",
				},
				"start_day": {
					Type:        "number",
					Description: "Start day of month.",
				},
				"end_year": {
					Type:        "number",
					Description: "End year. Omit for an open-ended position.",
				},
				"end_month": {
					Type:        "number",
					Description: "End month (1-12).",
				},
				"end_day": {
					Type:        "number",
					Description: "End day of month.",
				},
				"is_current": {
					Type:        "boolean",
					Description: "Set to true when this is the current position.",
				},
			},
		},
	}
}

func (t upsertExperienceTool) Call(ctx context.Context, input Input) (any, error) {
	return t.client.UpsertExperience(ctx, linkedin.ExperienceArgs{
		ID:             stringArg(input, "position_id"),
		Title:          stringArg(input, "title"),
		Company:        stringArg(input, "company"),
		EmploymentType: stringArg(input, "employment_type"),
		Location:       stringArg(input, "location"),
		Description:    stringArg(input, "description"),
		StartYear:      intArg(input, "start_year"),
		StartMonth:     intArg(input, "start_month"),
		StartDay:       intArg(input, "start_day"),
		EndYear:        intArg(input, "end_year"),
		EndMonth:       intArg(input, "end_month"),
		EndDay:         intArg(input, "end_day"),
		Current:        boolArg(input, "is_current"),
	})
}
