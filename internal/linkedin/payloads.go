package linkedin

import "strings"

// Payload builders. Pure functions, no I/O: they trim, validate and shape
// tool arguments into the body each endpoint expects. A required field
// which is blank after trimming fails with InvalidArgumentError naming
// the field. An optional field which is blank after trimming is omitted
// from the payload rather than sent as an empty string.

// defaultDistribution is the main-feed, no-targeting, no-third-party
// default shared by most post shapes.
func defaultDistribution() map[string]any {
	return map[string]any{
		"feedDistribution":               "MAIN_FEED",
		"targetEntities":                 []any{},
		"thirdPartyDistributionChannels": []any{},
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func buildPostPayload(args PostArgs) (map[string]any, error) {
	author := strings.TrimSpace(args.Author)
	commentary := strings.TrimSpace(args.Commentary)
	if author == "" {
		return nil, requiredArg("author")
	}
	if commentary == "" {
		return nil, requiredArg("commentary")
	}

	distribution := args.Distribution
	if distribution == nil {
		distribution = defaultDistribution()
	}
	return map[string]any{
		"author":                    author,
		"commentary":                commentary,
		"visibility":                orDefault(args.Visibility, "PUBLIC"),
		"distribution":              distribution,
		"lifecycleState":            orDefault(args.LifecycleState, "PUBLISHED"),
		"isReshareDisabledByAuthor": args.ReshareDisabled,
	}, nil
}

func buildArticlePostPayload(args ArticlePostArgs) (map[string]any, error) {
	author := strings.TrimSpace(args.Author)
	commentary := strings.TrimSpace(args.Commentary)
	source := strings.TrimSpace(args.Source)
	title := strings.TrimSpace(args.Title)
	description := strings.TrimSpace(args.Description)
	if author == "" {
		return nil, requiredArg("author")
	}
	if commentary == "" {
		return nil, requiredArg("commentary")
	}
	if source == "" {
		return nil, requiredArg("article_source")
	}
	if title == "" {
		return nil, requiredArg("article_title")
	}
	if description == "" {
		return nil, requiredArg("article_description")
	}

	// Article posts default to a plain main-feed distribution, without the
	// targeting/syndication fields the other shapes carry.
	distribution := args.Distribution
	if distribution == nil {
		distribution = map[string]any{"feedDistribution": "MAIN_FEED"}
	}
	return map[string]any{
		"author":         author,
		"commentary":     commentary,
		"visibility":     orDefault(args.Visibility, "PUBLIC"),
		"lifecycleState": orDefault(args.LifecycleState, "PUBLISHED"),
		"content": map[string]any{
			"article": map[string]any{
				"source":      source,
				"title":       title,
				"description": description,
			},
		},
		"distribution": distribution,
	}, nil
}

func buildResharePayload(args ReshareArgs) (map[string]any, error) {
	author := strings.TrimSpace(args.Author)
	parent := strings.TrimSpace(args.Parent)
	if author == "" {
		return nil, requiredArg("author")
	}
	if parent == "" {
		return nil, requiredArg("parent")
	}

	distribution := args.Distribution
	if distribution == nil {
		distribution = defaultDistribution()
	}
	payload := map[string]any{
		"author":                    author,
		"visibility":                orDefault(args.Visibility, "PUBLIC"),
		"distribution":              distribution,
		"lifecycleState":            orDefault(args.LifecycleState, "PUBLISHED"),
		"isReshareDisabledByAuthor": args.ReshareDisabled,
		"reshareContext":            map[string]any{"parent": parent},
	}
	if commentary := strings.TrimSpace(args.Commentary); commentary != "" {
		payload["commentary"] = commentary
	}
	return payload, nil
}

func buildImagePostPayload(args ImagePostArgs) (map[string]any, error) {
	author := strings.TrimSpace(args.Author)
	imageURN := strings.TrimSpace(args.ImageURN)
	commentary := strings.TrimSpace(args.Commentary)
	if author == "" {
		return nil, requiredArg("author")
	}
	if imageURN == "" {
		return nil, requiredArg("image_urn")
	}
	if commentary == "" {
		return nil, requiredArg("commentary")
	}

	media := map[string]any{"id": imageURN}
	if alt := strings.TrimSpace(args.AltText); alt != "" {
		media["altText"] = alt
	}
	// Single-image posts always surface on the main feed, the caller
	// cannot override the distribution.
	return map[string]any{
		"author":         author,
		"commentary":     commentary,
		"visibility":     orDefault(args.Visibility, "PUBLIC"),
		"lifecycleState": orDefault(args.LifecycleState, "PUBLISHED"),
		"distribution":   defaultDistribution(),
		"content":        map[string]any{"media": media},
	}, nil
}

func buildMultiImagePostPayload(args MultiImagePostArgs) (map[string]any, error) {
	author := strings.TrimSpace(args.Author)
	commentary := strings.TrimSpace(args.Commentary)
	if author == "" {
		return nil, requiredArg("author")
	}
	if commentary == "" {
		return nil, requiredArg("commentary")
	}
	if len(args.Images) == 0 {
		return nil, requiredArg("images")
	}

	items := make([]map[string]any, 0, len(args.Images))
	for _, img := range args.Images {
		id := strings.TrimSpace(img.ID)
		if id == "" {
			return nil, requiredArg("image id")
		}
		item := map[string]any{"id": id}
		if alt := strings.TrimSpace(img.AltText); alt != "" {
			item["altText"] = alt
		}
		items = append(items, item)
	}

	distribution := args.Distribution
	if distribution == nil {
		distribution = defaultDistribution()
	}
	return map[string]any{
		"author":                    author,
		"commentary":                commentary,
		"visibility":                orDefault(args.Visibility, "PUBLIC"),
		"distribution":              distribution,
		"lifecycleState":            orDefault(args.LifecycleState, "PUBLISHED"),
		"isReshareDisabledByAuthor": args.ReshareDisabled,
		"content":                   map[string]any{"multiImage": map[string]any{"images": items}},
	}, nil
}

// buildPositionPayload shapes one experience entry. owner is the resolved
// author URN of the authenticated member.
func buildPositionPayload(owner string, args ExperienceArgs) (map[string]any, error) {
	title := strings.TrimSpace(args.Title)
	company := strings.TrimSpace(args.Company)
	if title == "" {
		return nil, requiredArg("title")
	}
	if company == "" {
		return nil, requiredArg("company")
	}

	payload := map[string]any{
		"owner":             owner,
		"title":             title,
		"companyName":       company,
		"isCurrentPosition": args.Current,
	}
	if v := strings.TrimSpace(args.EmploymentType); v != "" {
		payload["employmentType"] = v
	}
	if v := strings.TrimSpace(args.Location); v != "" {
		payload["locationName"] = v
	}
	if v := strings.TrimSpace(args.Description); v != "" {
		payload["description"] = v
	}
	if d := datePayload(args.StartYear, args.StartMonth, args.StartDay); d != nil {
		payload["startDate"] = d
	}
	if d := datePayload(args.EndYear, args.EndMonth, args.EndDay); d != nil {
		payload["endDate"] = d
	}
	return payload, nil
}

func datePayload(year, month, day int) map[string]any {
	if year == 0 {
		return nil
	}
	d := map[string]any{"year": year}
	if month != 0 {
		d["month"] = month
	}
	if day != 0 {
		d["day"] = day
	}
	return d
}
