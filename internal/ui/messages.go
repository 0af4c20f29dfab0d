package ui

import "medsearch/internal/api"

// searchDoneMsg contains the result of a search request
type searchDoneMsg struct {
	resp *api.SearchResponse
	err  error
}

// healthDoneMsg contains the result of the startup health check
type healthDoneMsg struct {
	err error
}

// pagerClosedMsg signals that the document pager has exited
type pagerClosedMsg struct {
	err error
}

// browserOpenedMsg contains the result of opening a PubMed link
type browserOpenedMsg struct {
	url string
	err error
}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}
