package completer

import (
	"fmt"
	"strings"
)

type actionKind int

const (
	actionEmpty actionKind = iota
	actionSingleInsert
	actionCommonPrefixInsert
	actionListing
)

// renderAction は補完結果をエディタにどう反映するか
type renderAction struct {
	kind    actionKind
	insert  string
	listing string
}

// render は候補と入力済みの接頭辞から反映方法を決める
func render(candidates []Candidate, prefix string, width int) renderAction {
	switch len(candidates) {
	case 0:
		return renderAction{kind: actionEmpty}
	case 1:
		return renderAction{
			kind:   actionSingleInsert,
			insert: candidates[0].Name[len(prefix):],
		}
	}

	// 先頭の候補を基準に、全候補に共通する接頭辞を伸ばす
	first := candidates[0].Name
	common := len(prefix)
	for ; common < len(first); common++ {
		diverged := false
		for _, cand := range candidates[1:] {
			if common >= len(cand.Name) || cand.Name[common] != first[common] {
				diverged = true
				break
			}
		}
		if diverged {
			break
		}
	}
	if common > len(prefix) {
		return renderAction{
			kind:   actionCommonPrefixInsert,
			insert: first[len(prefix):common],
		}
	}
	return renderAction{
		kind:    actionListing,
		listing: formatListing(candidates, width),
	}
}

// formatListing は候補を最長の幅に揃えて端末幅で折り返す
func formatListing(candidates []Candidate, width int) string {
	maxWidth := 0
	for _, cand := range candidates {
		maxWidth = max(maxWidth, len(cand.Name))
	}
	columns := max(width/(maxWidth+2), 1)

	var sb strings.Builder
	sb.WriteString("\n")
	for i, cand := range candidates {
		fmt.Fprintf(&sb, "%-*s  ", maxWidth, cand.Name)
		if (i+1)%columns == 0 {
			sb.WriteString("\n")
		}
	}
	if len(candidates)%columns != 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

// apply は反映方法に従ってエディタを操作する
func apply(action renderAction, ed Editor) {
	switch action.kind {
	case actionSingleInsert:
		ed.InsertText(action.insert)
		ed.RepositionCursor()
	case actionCommonPrefixInsert:
		ed.InsertText(action.insert)
	case actionListing:
		fmt.Fprint(ed.Output(), action.listing)
	}
}
