package story

import (
	"sort"

	"github.com/samber/lo"

	"hn_top/internal/domain/entity"
)

// Select оставляет истории строго выше порога и сортирует по убыванию очков.
// Сортировка стабильная: при равных очках сохраняется порядок из документа.
// Вход не мутируется, на выходе всегда свежий срез.
func Select(stories []entity.Story, threshold int) []entity.Story {
	kept := lo.Filter(stories, func(s entity.Story, _ int) bool {
		return s.Score > threshold
	})

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	return kept
}

// Top отдаёт первые n историй; n <= 0 значит без ограничения.
func Top(stories []entity.Story, n int) []entity.Story {
	if n <= 0 || n >= len(stories) {
		return stories
	}

	return stories[:n]
}
