package repository

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"videotube-server/internal/model"
)

const (
	defaultFeedPage  = 1
	defaultFeedLimit = 10
	maxFeedLimit     = 100
	maxFeedPage      = math.MaxInt32

	defaultSortColumn = "created_at"
)

// сортировка только по этим полям, остальное падает в created_at
var feedSortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"title":     "title",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NewFeedParams : нормализует сырые параметры строки запроса
func NewFeedParams(page, limit, query, sortBy, sortType string) model.FeedParams {
	params := model.FeedParams{
		Page:       defaultFeedPage,
		Limit:      defaultFeedLimit,
		Query:      strings.TrimSpace(query),
		SortColumn: defaultSortColumn,
		SortDesc:   !strings.EqualFold(strings.TrimSpace(sortType), "asc"),
	}

	if p, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && p > 0 {
		params.Page = min(p, maxFeedPage)
	} else if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(page), "-") {
		params.Page = maxFeedPage
	}

	if l, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && l != 0 {
		switch {
		case l < 0:
			params.Limit = 1
		case l > maxFeedLimit:
			params.Limit = maxFeedLimit
		default:
			params.Limit = l
		}
	}

	if column, ok := feedSortColumns[strings.TrimSpace(sortBy)]; ok {
		params.SortColumn = column
	}

	return params
}

// BuildVideoFeedQuery : один запрос, который за проход по отфильтрованному набору
// считает общее количество и собирает окно страницы в json вместе с владельцем
func BuildVideoFeedQuery(params model.FeedParams) (string, []interface{}) {
	column, ok := allowedSortColumn(params.SortColumn)
	if !ok {
		column = defaultSortColumn
	}

	direction := "DESC"
	if !params.SortDesc {
		direction = "ASC"
	}

	var args []interface{}
	where := ""
	if params.Query != "" {
		args = append(args, "%"+likeEscaper.Replace(params.Query)+"%")
		where = fmt.Sprintf("WHERE v.title ILIKE $%d", len(args))
	}

	args = append(args, params.Limit, params.Offset())
	limitArg, offsetArg := len(args)-1, len(args)

	query := fmt.Sprintf(`
	WITH filtered AS (
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.video_public_id,
		       v.thumbnail_url, v.thumbnail_public_id, v.duration, v.views, v.created_at, v.updated_at,
		       CASE WHEN u.id IS NULL THEN NULL
		            ELSE json_build_object('id', u.id, 'full_name', u.full_name, 'username', u.username, 'avatar', u.avatar)
		       END AS owner
		FROM videos v
		LEFT JOIN users u ON u.id = v.owner_id
		%[1]s
	)
	SELECT
		(SELECT COUNT(*) FROM filtered) AS total_count,
		COALESCE((
			SELECT json_agg(page ORDER BY page.%[2]s %[3]s, page.id %[3]s)
			FROM (
				SELECT * FROM filtered
				ORDER BY %[2]s %[3]s, id %[3]s
				LIMIT $%[4]d OFFSET $%[5]d
			) page
		), '[]'::json) AS items`, where, column, direction, limitArg, offsetArg)

	return query, args
}

func allowedSortColumn(column string) (string, bool) {
	for _, allowed := range feedSortColumns {
		if allowed == column {
			return column, true
		}
	}
	return "", false
}
