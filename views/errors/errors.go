package errors

import (
	"strconv"

	"maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

func GenericError(status int, message string) gomponents.Node {
	return page(strconv.Itoa(status), message)
}

func Error404() gomponents.Node {
	return page("404", "Not found")
}

func Error500() gomponents.Node {
	return page("500", "Something went wrong")
}

func page(code, message string) gomponents.Node {
	return components.HTML5(components.HTML5Props{
		Title:    code + " " + message,
		Language: "en",
		Head: []gomponents.Node{
			Link(Rel("stylesheet"), Href("/static/app.css")),
		},
		Body: []gomponents.Node{
			Main(
				Class("error-page"),
				H1(gomponents.Text(code)),
				P(gomponents.Text(message)),
			),
		},
	})
}
