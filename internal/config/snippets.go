package config

// The tables below are small, representative snippet/variable sets
// grounded on snippets/html.py, snippets/css.py, snippets/xsl.py,
// snippets/pug.py and snippets/variables.py. The upstream tables are
// generated data (hundreds of entries); these carry enough real
// abbreviations to exercise every code path (self-closing shorthand,
// multi-element snippets, attribute defaults) without reproducing the
// full dictionaries, which spec.md explicitly keeps out of scope.

func builtinVariables() map[string]string {
	return map[string]string{
		"lang":        "en",
		"locale":      "en-US",
		"charset":     "UTF-8",
		"indentation": "\t",
		"newline":     "\n",
	}
}

func builtinMarkupSnippets() map[string]string {
	return map[string]string{
		"a":       "a[href]",
		"a:link":  "a[href=http://]",
		"a:mail":  "a[href=mailto:]",
		"abbr":    "abbr[title]",
		"acr|acronym": "acronym[title]",
		"base":    "base[href]/",
		"basefont": "basefont/",
		"br":      "br/",
		"hr":      "hr/",
		"bdo":     "bdo[dir]",
		"bdo:r":   "bdo[dir=rtl]",
		"bdo:l":   "bdo[dir=ltr]",
		"col":     "col/",
		"link":    "link[rel=stylesheet href]/",
		"link:css": "link[rel=stylesheet href=style.css]/",
		"link:favicon": "link[rel=shortcut icon type=image/x-icon href=favicon.ico]/",
		"meta":    "meta/",
		"meta:utf": "meta[charset=UTF-8]/",
		"meta:vp": "meta[name=viewport content=\"width=device-width, initial-scale=1.0\"]/",
		"img":     "img[src alt]/",
		"input":   "input[type=text]/",
		"input:hidden": "input[type=hidden name]/",
		"input:text":   "input[type=text name id]/",
		"input:checkbox": "input[type=checkbox name id]/",
		"input:radio":    "input[type=radio name id]/",
		"input:submit":   "input[type=submit value]/",
		"textarea": "textarea[name id cols=30 rows=10]",
		"select":   "select[name id]",
		"option":   "option[value]",
		"form":     "form[action]",
		"table":    "table",
		"tr":       "tr",
		"td":       "td",
		"th":       "th",
		"ul":       "ul>li",
		"ol":       "ol>li",
		"dl":       "dl>dt+dd",
		"video":    "video[src]",
		"audio":    "audio[src]",
		"source":   "source[src type]/",
		"iframe":   "iframe[src frameborder=0]",
		"script":   "script",
		"script:src": "script[src]",
		"style":    "style",
		"picture":  "picture",
	}
}

func builtinStylesheetSnippets() map[string]string {
	return map[string]string{
		"m":    "margin",
		"p":    "padding",
		"d":    "display",
		"pos":  "position",
		"t":    "top",
		"l":    "left",
		"z":    "z-index",
		"fl":   "float",
		"w":    "width",
		"h":    "height",
		"bg":   "background",
		"bgc":  "background-color",
		"c":    "color",
		"fz":   "font-size",
		"ff":   "font-family",
		"fw":   "font-weight",
		"ta":   "text-align",
		"td":   "text-decoration",
		"tt":   "text-transform",
		"lh":   "line-height",
		"bd":   "border:1px solid black",
		"bdrs": "border-radius",
		"op":   "opacity",
		"ov":   "overflow",
		"cur":  "cursor",
		"trf":  "transform",
		"trs":  "transition",
		"fx":   "flex",
		"fxd":  "flex-direction",
		"jc":   "justify-content",
		"ai":   "align-items",
		"@k":   "@keyframes ${1:name} {\n\t${2}\n}",
	}
}

func builtinXSLSnippets() map[string]string {
	return map[string]string{
		"tm":   "xsl:template[match mode]",
		"var":  "xsl:variable[name]",
		"val":  "xsl:value-of[select]",
		"ap":   "xsl:apply-templates[select mode]",
		"call": "xsl:call-template[name]",
		"wp":   "xsl:with-param[name select]",
		"if":   "xsl:if[test]",
		"ch":   "xsl:choose",
		"wn":   "xsl:when[test]",
		"ot":   "xsl:otherwise",
		"each": "xsl:for-each[select]",
	}
}

func builtinPugSnippets() map[string]string {
	return map[string]string{
		"!!!": "doctype html",
	}
}
