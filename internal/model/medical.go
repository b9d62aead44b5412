package model

type ConditionInfo struct {
	Condition   string `json:"condition"`
	Information string `json:"information"`
}

type PresetCondition struct {
	Name     string
	Category string
}

type MedicalSearchForm struct {
	Condition string `form:"condition"`
}
