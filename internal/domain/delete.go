package domain

// DeleteAction - результат запроса на удаление
type DeleteAction int

const (
	// DeleteActionConfirm - показать подтверждение, данные не меняются
	DeleteActionConfirm DeleteAction = iota
	// DeleteActionExecute - выполнить физическое удаление
	DeleteActionExecute
)

// PlanDelete выбирает действие по факту подтверждения
func PlanDelete(confirmed bool) DeleteAction {
	if confirmed {
		return DeleteActionExecute
	}
	return DeleteActionConfirm
}
