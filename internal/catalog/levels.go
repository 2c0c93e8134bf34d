package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrCareerNotFound  = errors.New("career path not found")
	ErrModuleNotFound  = errors.New("learning module not found")
	ErrVideoNotFound   = errors.New("video not found")
	ErrInsightNotFound = errors.New("career insight not found")
	ErrLevelNotFound   = errors.New("level not found")
	ErrSubjectNotFound = errors.New("subject not found")
)

// Level 熟练度等级
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

var Levels = []Level{Beginner, Intermediate, Advanced}

// LevelForScore 分数 -> 等级：0-60 初级，61-80 中级，81 及以上高级
func LevelForScore(score int) Level {
	switch {
	case score <= 60:
		return Beginner
	case score <= 80:
		return Intermediate
	default:
		return Advanced
	}
}

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case Beginner, Intermediate, Advanced:
		return Level(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrLevelNotFound, s)
}
