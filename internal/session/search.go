package session

import (
	"sort"
	"strings"

	"github.com/hazadus/go-videoplayer/internal/data"
)

// SearchByTitle ищет непомеченные видео, в названии которых есть term (без учета регистра)
func (m *Manager) SearchByTitle(term string) []data.Video {
	needle := strings.ToLower(term)
	return m.search(func(v data.Video) bool {
		return strings.Contains(strings.ToLower(v.Title), needle)
	})
}

// SearchByTag ищет непомеченные видео с тегом, совпадающим с tag без учета регистра
func (m *Manager) SearchByTag(tag string) []data.Video {
	return m.search(func(v data.Video) bool {
		for _, t := range v.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	})
}

func (m *Manager) search(match func(data.Video) bool) []data.Video {
	var results []data.Video
	for _, v := range m.catalog.All() {
		if _, flagged := m.flags[v.ID]; flagged {
			continue
		}
		if match(v) {
			results = append(results, v)
		}
	}
	return sortByTitle(results)
}

// SelectFromResults переводит номер результата (с 1) в id видео.
// Номер вне диапазона означает отсутствие выбора.
func SelectFromResults(results []data.Video, index int) (string, bool) {
	if index < 1 || index > len(results) {
		return "", false
	}
	return results[index-1].ID, true
}

// sortByTitle сортирует по названию, сохраняя порядок каталога для одинаковых названий
func sortByTitle(videos []data.Video) []data.Video {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Title < videos[j].Title
	})
	return videos
}
