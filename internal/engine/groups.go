package engine

import (
	"sort"

	"github.com/mkraev/sellerboard/internal/model"
)

// SmartGroup — пачка однотоварных неупакованных отправлений одного артикула,
// для массовой сборки.
type SmartGroup struct {
	Product  model.Product
	Postings []model.Posting
}

// SmartGroups собирает группы из операционного окна: ровно одна позиция,
// не упаковано, упаковываемый статус, совпадение с поиском. Группировка по
// offer_id, сортировка по убыванию размера, при равенстве — порядок встречи.
func SmartGroups(operational []model.Posting, overrides map[string]model.Override, query string) []SmartGroup {
	q := normalizeQuery(query)

	index := make(map[string]int)
	var groups []SmartGroup

	for _, p := range operational {
		if len(p.Products) != 1 {
			continue
		}
		if overrides[p.PostingNumber].Packed || !IsPackable(p.Status) {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}

		product := p.Products[0]
		i, ok := index[product.OfferID]
		if !ok {
			i = len(groups)
			index[product.OfferID] = i
			groups = append(groups, SmartGroup{Product: product})
		}
		groups[i].Postings = append(groups[i].Postings, p)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Postings) > len(groups[j].Postings)
	})
	return groups
}
