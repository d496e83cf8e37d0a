package catalog

// Key identifies one of the eight constitution types being scored.
type Key string

const (
	Qixu   Key = "qixu"   // 気虚
	Yangxu Key = "yangxu" // 陽虚
	Xuexu  Key = "xuexu"  // 血虚
	Yinxu  Key = "yinxu"  // 陰虚
	Qitai  Key = "qitai"  // 気滞
	Shire  Key = "shire"  // 湿熱
	Oketsu Key = "oketsu" // 瘀血
	Tanshi Key = "tanshi" // 痰湿
)

// Cohort selects which question catalog variant applies.
type Cohort string

const (
	CohortFemale Cohort = "female"
	CohortMale   Cohort = "male"
)

func (c Cohort) Valid() bool {
	return c == CohortFemale || c == CohortMale
}

// Label returns the display form of the cohort.
func (c Cohort) Label() string {
	switch c {
	case CohortFemale:
		return "女性"
	case CohortMale:
		return "男性"
	}
	return string(c)
}

type Advice struct {
	Lifestyle string `yaml:"lifestyle"`
	Diet      string `yaml:"diet"`
}

// Category is one scoring bucket. MaxScore is derived at load time from the
// question count and the scale width; it is not part of the data file.
type Category struct {
	Key      Key    `yaml:"key"`
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	Short    string `yaml:"short"`
	Advice   Advice `yaml:"advice"`
	MaxScore int    `yaml:"-"`
}

// Question belongs to exactly one catalog variant. Optional questions do not
// block page advancement when left unanswered.
type Question struct {
	ID       int    `yaml:"id"`
	Key      Key    `yaml:"key"`
	Text     string `yaml:"text"`
	Optional bool   `yaml:"optional"`
}

// ScalePoint is one step of the Likert scale, 0..N low to high endorsement.
type ScalePoint struct {
	Value int    `yaml:"value"`
	Label string `yaml:"label"`
}
