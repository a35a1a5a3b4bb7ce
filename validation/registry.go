package validation

// methodRegistry is the IANA HTTP Method Registry
// (https://www.iana.org/assignments/http-methods/http-methods.xhtml) plus
// the "*" asterisk-form request-target, which validateMethod accepts under
// restrict_http_methods even though it is not itself a method.
var methodRegistry = map[string]bool{
	"ACL": true, "BASELINE-CONTROL": true, "BIND": true, "CHECKIN": true,
	"CHECKOUT": true, "CONNECT": true, "COPY": true, "DELETE": true,
	"GET": true, "HEAD": true, "LABEL": true, "LINK": true, "LOCK": true,
	"MERGE": true, "MKACTIVITY": true, "MKCALENDAR": true, "MKCOL": true,
	"MKREDIRECTREF": true, "MKWORKSPACE": true, "MOVE": true,
	"OPTIONS": true, "ORDERPATCH": true, "PATCH": true, "POST": true,
	"PRI": true, "PROPFIND": true, "PROPPATCH": true, "PUT": true,
	"REBIND": true, "REPORT": true, "SEARCH": true, "TRACE": true,
	"UNBIND": true, "UNCHECKOUT": true, "UNLINK": true, "UNLOCK": true,
	"UPDATE": true, "UPDATEREDIRECTREF": true, "VERSION-CONTROL": true,
	"*": true,
}

// officialStatusCodes is the set of status codes registered in the IANA
// HTTP Status Code Registry
// (https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml).
//
// Notably absent: 101 (Switching Protocols). Upstream's registered-code set
// omits it too; preserved here rather than "corrected" against the live
// IANA registry, since callers may already depend on the existing behavior.
var officialStatusCodes = map[int]bool{
	100: true, 102: true, 103: true,
	200: true, 201: true, 202: true, 203: true, 204: true, 205: true,
	206: true, 207: true, 208: true, 226: true,
	300: true, 301: true, 302: true, 303: true, 304: true, 305: true,
	306: true, 307: true, 308: true,
	400: true, 401: true, 402: true, 403: true, 404: true, 405: true,
	406: true, 407: true, 408: true, 409: true, 410: true, 411: true,
	412: true, 413: true, 414: true, 415: true, 416: true, 417: true,
	418: true, 421: true, 422: true, 423: true, 424: true, 425: true,
	426: true, 428: true, 429: true, 431: true, 451: true,
	500: true, 501: true, 502: true, 503: true, 504: true, 505: true,
	506: true, 507: true, 508: true, 510: true, 511: true,
}
