package editor

import "github.com/five82/playpen/internal/api"

func (m Model) changeQuery(query string) (Model, []Effect) {
	m.searchValue = query
	return m, []Effect{SearchPackages{Query: query}}
}

// completeSearch applies a result only if it answers the current query.
// Responses may arrive out of order; older ones are dropped here.
func (m Model) completeSearch(msg SearchResultsCompleted) Model {
	if msg.Query != m.searchValue {
		return m
	}
	if msg.Err != nil {
		return m
	}
	m.searchResults = append([]api.Package(nil), msg.Packages...)
	return m
}

func (m Model) selectPackage(pkg api.Package) Model {
	m.searchOpen = false
	m.searchValue = ""
	m.searchResults = nil
	m.packagesChanged = true
	return m.updateClientRevision(func(rev api.Revision) api.Revision {
		rev.Packages = append(rev.Packages, pkg)
		return rev
	})
}

func (m Model) removePackage(pkg api.Package) Model {
	m.packagesChanged = true
	return m.updateClientRevision(func(rev api.Revision) api.Revision {
		kept := make([]api.Package, 0, len(rev.Packages))
		for _, p := range rev.Packages {
			if p != pkg {
				kept = append(kept, p)
			}
		}
		rev.Packages = kept
		return rev
	})
}

func (m Model) toggleSearch() (Model, []Effect) {
	m.searchOpen = !m.searchOpen
	if m.searchOpen {
		return m, []Effect{Focus{ElementID: SearchInputID}}
	}
	return m, nil
}
