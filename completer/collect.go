package completer

// maxCandidates は一度の補完で集める候補の上限
const maxCandidates = 255

// Candidate は補完候補
// 呼び出し可能な値の場合、Nameの末尾に "(" がつく
type Candidate struct {
	Name     string
	Callable bool
}

// collect はrootの属性から接頭辞に一致する名前を集める
// escalateが真の場合は、モジュール、組み込み、キーワードの順に名前空間を広げて集め続ける
// 候補は段をまたいで重複しない
func (c *Completer) collect(root scope, prefix string, escalate bool) ([]Candidate, error) {
	candidates := make([]Candidate, 0)
	seen := make(map[string]struct{})

	for _, sc := range c.scopeChain(root, escalate) {
		names, err := sc.members()
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if len(candidates) >= maxCandidates {
				return candidates, nil
			}
			callable := false
			if v, ok := sc.lookup(name); ok && v != nil {
				callable = c.host.IsCallable(v)
			}
			if callable {
				name += "("
			}
			if len(name) < len(prefix) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			if name[:len(prefix)] != prefix {
				continue
			}
			seen[name] = struct{}{}
			candidates = append(candidates, Candidate{Name: name, Callable: callable})
		}
	}
	return candidates, nil
}

// scopeChain は候補を集める名前空間を順に返す
func (c *Completer) scopeChain(root scope, escalate bool) []scope {
	if !escalate {
		return []scope{root}
	}
	return []scope{
		root,
		hostScope{host: c.host, value: c.host.BuiltinScope()},
		newKeywordScope(),
	}
}
