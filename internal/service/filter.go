package service

import (
	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"
)

// BuildHistoryFilter scopes the predicate to ownerID and adds only the optional
// filters that were supplied.
func BuildHistoryFilter(ownerID string, typ *model.BarcodeType, edited *bool) repository.Filter {
	f := repository.Filter{UserID: &ownerID}
	if typ != nil && *typ != "" {
		t := *typ
		f.Type = &t
	}
	if edited != nil {
		e := *edited
		f.EditFlag = &e
	}
	return f
}

func sortOrDefault(s repository.SortField) repository.SortField {
	if s == repository.SortByUpdatedAt {
		return s
	}
	return repository.SortByCreatedAt
}
