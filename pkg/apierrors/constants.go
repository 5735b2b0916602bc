package apierrors

const (
	MsgInvalidTaskID          = "invalidTaskID"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgInvalidPropertyID      = "invalidPropertyID"
	MsgInvalidPropertyPayload = "invalidPropertyPayload"
	MsgInvalidUser            = "invalidUser"
	MsgTaskNotFound           = "taskNotFound"
	MsgPropertyNotFound       = "propertyNotFound"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgHierarchyCycle         = "hierarchyCycle"
	MsgFailListTask           = "errorListTask"
	MsgFailGetTask            = "failGetTask"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailUpdateTask         = "failUpdateTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgFailCreateProperty     = "failCreateProperty"
	MsgFailUpdateProperty     = "failUpdateProperty"
	MsgFailDeleteProperty     = "failDeleteProperty"
)
