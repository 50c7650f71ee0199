package theme

type palette struct {
	name string

	background, gridLines             string
	cellHidden, cellRevealed          string
	cellHover, text                   string
	buttonBG, buttonHover, buttonText string
	flag, mine                        string
	numbers                           [8]string
}

var palettes = []palette{
	{
		name: "Classic",
		background: "rgb(220, 220, 220)", gridLines: "gray",
		cellHidden: "silver", cellRevealed: "lightgray",
		cellHover: "rgb(170, 170, 170)", text: "black",
		buttonBG: "silver", buttonHover: "gray", buttonText: "black",
		flag: "red", mine: "black",
		numbers: [8]string{"blue", "green", "red", "navy", "maroon", "teal", "black", "gray"},
	},
	{
		name: "Strawberry",
		background: "rgb(255, 223, 223)", gridLines: "darkred",
		cellHidden: "tomato", cellRevealed: "pink",
		cellHover: "rgb(255, 60, 40)", text: "darkred",
		buttonBG: "tomato", buttonHover: "darksalmon", buttonText: "white",
		flag: "darkgreen", mine: "rgb(50, 50, 50)",
		numbers: [8]string{"darkblue", "darkgreen", "darkred", "indigo", "brown", "seagreen", "rgb(40, 40, 40)", "rgb(100, 100, 100)"},
	},
	{
		name: "Lemon",
		background: "lightyellow", gridLines: "darkgoldenrod",
		cellHidden: "yellow", cellRevealed: "lemonchiffon",
		cellHover: "khaki", text: "saddlebrown",
		buttonBG: "gold", buttonHover: "goldenrod", buttonText: "black",
		flag: "green", mine: "rgb(30, 30, 30)",
		numbers: [8]string{"mediumblue", "limegreen", "indianred", "darkslateblue", "saddlebrown", "darkslategray", "rgb(60, 60, 60)", "slategray"},
	},
	{
		name: "Lime",
		background: "honeydew", gridLines: "darkgreen",
		cellHidden: "limegreen", cellRevealed: "palegreen",
		cellHover: "forestgreen", text: "darkgreen",
		buttonBG: "lawngreen", buttonHover: "greenyellow", buttonText: "black",
		flag: "orange", mine: "rgb(40, 40, 40)",
		numbers: [8]string{"dodgerblue", "purple", "red", "darkblue", "sienna", "darkcyan", "rgb(50, 50, 50)", "dimgray"},
	},
	{
		name: "Blueberry",
		background: "aliceblue", gridLines: "darkblue",
		cellHidden: "cornflowerblue", cellRevealed: "lightblue",
		cellHover: "steelblue", text: "midnightblue",
		buttonBG: "royalblue", buttonHover: "cornflowerblue", buttonText: "white",
		flag: "gold", mine: "rgb(10, 10, 10)",
		numbers: [8]string{"darkorange", "forestgreen", "crimson", "darkviolet", "chocolate", "darkturquoise", "rgb(70, 70, 70)", "darkgray"},
	},
	{
		name: "Orange",
		background: "seashell", gridLines: "sienna",
		cellHidden: "orange", cellRevealed: "moccasin",
		cellHover: "darkorange", text: "saddlebrown",
		buttonBG: "coral", buttonHover: "tomato", buttonText: "white",
		flag: "mediumblue", mine: "rgb(50, 20, 0)",
		numbers: [8]string{"deepskyblue", "yellowgreen", "orangered", "indigo", "maroon", "teal", "rgb(60, 60, 60)", "lightslategray"},
	},
	{
		name: "Grape",
		background: "lavender", gridLines: "indigo",
		cellHidden: "mediumpurple", cellRevealed: "thistle",
		cellHover: "blueviolet", text: "rgb(48, 25, 52)",
		buttonBG: "darkorchid", buttonHover: "darkviolet", buttonText: "white",
		flag: "yellow", mine: "rgb(20, 0, 30)",
		numbers: [8]string{"springgreen", "hotpink", "orangered", "darkgreen", "firebrick", "mediumturquoise", "rgb(80, 80, 80)", "rosybrown"},
	},
	{
		name: "Watermelon",
		background: "honeydew", gridLines: "darkgreen",
		cellHidden: "hotpink", cellRevealed: "lightpink",
		cellHover: "deeppink", text: "darkgreen",
		buttonBG: "mediumseagreen", buttonHover: "seagreen", buttonText: "white",
		flag: "rgb(50, 50, 50)", mine: "black",
		numbers: [8]string{"blue", "green", "red", "darkblue", "darkred", "darkcyan", "rgb(40, 40, 40)", "rgb(100, 100, 100)"},
	},
}
