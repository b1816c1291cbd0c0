package apimodels

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Response - общий конверт ответов api
type Response struct {
	Status  string      `json:"status"`            // StatusSuccess / StatusFail
	Message string      `json:"message,omitempty"` // текст ошибки
	Data    interface{} `json:"data,omitempty"`
}

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}
