package morphodrill

// BlockMiddlePassive reports whether going from orig to cand is a
// middle↔passive flip that would not be visible on the page. Middle and
// passive are spelled the same everywhere except the aorist and the future,
// so the flip is blocked unless one side is in one of those tenses.
func BlockMiddlePassive(orig, cand VerbForm) bool {
	flip := (orig.Voice == Middle && cand.Voice == Passive) ||
		(orig.Voice == Passive && cand.Voice == Middle)
	return flip && !distinctMiddlePassive(orig.Tense) && !distinctMiddlePassive(cand.Tense)
}

func distinctMiddlePassive(t Tense) bool {
	return t == Aorist || t == Future
}
