// component/render.go
package component

import "image/color"

// Renderable - компонент для отрисовки. Ядро заполняет его только при
// создании, рисует слой представления.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
