package local

type Response struct {
	Success		bool		`json:"success"`
	Message		string		`json:"message"`
}

type InfoResponse struct {
	Success		bool		`json:"success"`
	Message		string		`json:"message,omitempty"`
	Width		int		`json:"width"`
	Height		int		`json:"height"`
	Mode		string		`json:"mode"`
	CapacityChars	int		`json:"capacity_chars"`
	Preview		string		`json:"preview,omitempty"`	// data url of a jpeg thumbnail
	Filename	string		`json:"filename"`
}

type EncodeResponse struct {
	Success		bool		`json:"success"`
	Message		string		`json:"message"`
	Capacity	int		`json:"capacity"`	// bytes, delimiter included
	Used		int		`json:"used"`
	StegoImage	string		`json:"stego_image,omitempty"`	// data url of the result
	Preview		string		`json:"preview,omitempty"`
	Filename	string		`json:"filename,omitempty"`	// suggested download name
}

type DecodeResponse struct {
	Success		bool		`json:"success"`
	Message		string		`json:"message"`
	Secret		*string		`json:"secret"`	// null if nothing was found
	Preview		string		`json:"preview,omitempty"`
	Filename	string		`json:"filename"`
}
