package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/util"
)

// MaxCareerPicks 每个用户选择的职业数量
const MaxCareerPicks = 2

// ManualPicker 手动选择：再次点击取消，已选满时挤掉最早的选择
type ManualPicker struct {
	Picks []catalog.CareerPath `json:"picks"`
}

func (p *ManualPicker) Toggle(career catalog.CareerPath) {
	if i := indexOf(p.Picks, career); i >= 0 {
		p.Picks = removeAt(p.Picks, i)
		return
	}
	p.Picks = append(p.Picks, career)
	if len(p.Picks) > MaxCareerPicks {
		p.Picks = append([]catalog.CareerPath(nil), p.Picks[len(p.Picks)-MaxCareerPicks:]...)
	}
}

// ScriptedPicker 对话选择：已选满时拒绝新的选择，必须先取消一个
type ScriptedPicker struct {
	Picks []catalog.CareerPath `json:"picks"`
}

func (p *ScriptedPicker) Toggle(career catalog.CareerPath) error {
	if i := indexOf(p.Picks, career); i >= 0 {
		p.Picks = removeAt(p.Picks, i)
		return nil
	}
	if len(p.Picks) >= MaxCareerPicks {
		return util.ErrTooManyCareers
	}
	p.Picks = append(p.Picks, career)
	return nil
}

func indexOf(picks []catalog.CareerPath, career catalog.CareerPath) int {
	for i, c := range picks {
		if c == career {
			return i
		}
	}
	return -1
}

func removeAt(picks []catalog.CareerPath, i int) []catalog.CareerPath {
	out := make([]catalog.CareerPath, 0, len(picks)-1)
	out = append(out, picks[:i]...)
	return append(out, picks[i+1:]...)
}

func careerNames(picks []catalog.CareerPath) []string {
	out := make([]string, len(picks))
	for i, c := range picks {
		out[i] = c.String()
	}
	return out
}
