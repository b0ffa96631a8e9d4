// Package content holds the portfolio's static data: owner details,
// section anchors, skills, projects and contact links.
package content

// Owner identifies the person the portfolio belongs to.
var Owner = Person{
	Name:     "David Fernández",
	Headline: "Backend Java · Spring Boot",
	Summary: "Desarrollo APIs REST seguras y mantenibles con Swagger/OpenAPI, " +
		"JPA/MyBatis y bases de datos SQL. Enfoque en buenas prácticas, " +
		"testing y despliegue con Docker.",
	GitHub: "https://github.com/dferna40",
	CV:     "/CV_David_Fernández_Ramírez.pdf",
}

type Person struct {
	Name     string
	Headline string
	Summary  string
	GitHub   string
	CV       string
}

// Section is a navigable anchor on the page.
type Section struct {
	ID    string
	Label string
}

// Section IDs in page order.
const (
	SectionHome     = "home"
	SectionProjects = "projects"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

var Sections = []Section{
	{ID: SectionHome, Label: "Inicio"},
	{ID: SectionProjects, Label: "Proyectos"},
	{ID: SectionAbout, Label: "Sobre mí"},
	{ID: SectionContact, Label: "Contacto"},
}

// SectionIndex returns the position of the section with the given id, or -1.
func SectionIndex(id string) int {
	for i, s := range Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// SectionIDs returns every section id in page order.
func SectionIDs() []string {
	ids := make([]string, len(Sections))
	for i, s := range Sections {
		ids[i] = s.ID
	}
	return ids
}

var Skills = []string{
	"Java",
	"Spring Boot",
	"APIs REST",
	"Swagger/OpenAPI",
	"JPA (Hibernate)",
	"MyBatis",
	"MySQL",
	"Oracle",
	"Docker",
	"Git",
}

// HeroSkillCount is how many skills the hero section shows.
const HeroSkillCount = 6

// Links are a project's external references.
type Links struct {
	Repo    string
	Demo    string
	Swagger string
}

type Project struct {
	Title    string
	Subtitle string
	Bullets  []string
	Links    Links
	Tags     []string
}

var Projects = []Project{
	{
		Title:    "TaskFlow API",
		Subtitle: "API REST de gestión de tareas",
		Bullets: []string{
			"JWT + roles",
			"Swagger/OpenAPI",
			"JPA + filtros/paginación",
			"Docker Compose + tests",
		},
		Links: Links{Repo: "#", Demo: "#", Swagger: "#"},
		Tags:  []string{"Spring Boot", "JWT", "JPA", "MySQL"},
	},
	{
		Title:    "DataBridge Persistence",
		Subtitle: "Persistencia avanzada (JPA + MyBatis)",
		Bullets: []string{
			"Consultas complejas",
			"Paginación real",
			"Tests de repos/mappers",
			"Perfiles de entorno",
		},
		Links: Links{Repo: "#", Demo: "#", Swagger: "#"},
		Tags:  []string{"JPA", "MyBatis", "SQL"},
	},
	{
		Title:    "MiniSuite Microservices",
		Subtitle: "Auth + API de negocio (2 servicios)",
		Bullets: []string{
			"Auth service con JWT",
			"API protegida",
			"Docker Compose",
			"Swagger por servicio",
		},
		Links: Links{Repo: "#", Demo: "#", Swagger: "#"},
		Tags:  []string{"Microservicios", "Docker", "JWT"},
	},
}

// ProjectsIntro is shown above the project cards.
const ProjectsIntro = "Proyectos enfocados a demostrar habilidades reales: arquitectura, " +
	"seguridad, persistencia, documentación y despliegue."

var About = []string{
	"Soy desarrollador backend especializado en Java y Spring Boot. Me " +
		"enfoco en construir APIs REST claras, seguras y fáciles de mantener, " +
		"con una base sólida en persistencia (JPA/MyBatis) y bases de datos SQL.",
	"En este portfolio reúno proyectos prácticos con documentación y " +
		"despliegue para que puedas revisar el código y la forma de trabajar.",
}

// Contact is one entry of the contact list.
type Contact struct {
	Icon  string
	Label string
	URL   string
}

var Contacts = []Contact{
	{Icon: "✉", Label: "dferna40@gmail.com", URL: "mailto:dferna40@gmail.com"},
	{Icon: "gh", Label: "github.com/dferna40", URL: "https://github.com/dferna40"},
	{Icon: "in", Label: "linkedin.com/in/david-fernandez-ramirez-ba401128", URL: "https://www.linkedin.com/in/david-fernandez-ramirez-ba401128/"},
}
