package completer

// resolveChain はチェーンの識別子を外側から順に属性として辿り、候補を列挙する起点を求める
// isGlobalは起点がまだ修飾されていないグローバルスコープに固定されているかを表す
// 辿れない識別子があればfalseを返す
func (c *Completer) resolveChain(chain chainSpec, src string) (root scope, isGlobal bool, ok bool) {
	value := c.host.GlobalScope()
	isGlobal = true
	for _, step := range chain.steps() {
		name := step.Text(src)
		next, found := c.host.Attr(value, name)
		if !found && isGlobal {
			// 最初の識別子だけは組み込みの名前空間も探す
			next, found = c.host.Attr(c.host.BuiltinScope(), name)
		}
		if !found {
			return nil, false, false
		}
		value = next
		isGlobal = false
	}

	if isGlobal && chain.importAnchored {
		return newModuleListingScope(c.host.LoadedModules()), true, true
	}
	return hostScope{host: c.host, value: value}, isGlobal, true
}
