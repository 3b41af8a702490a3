package content

// Talks returns the compiled-in talk catalog, newest first.
func Talks() []Talk {
	return []Talk{
		{
			Title: "Hexagonal Architecture Demystified: Everything You Need to Know !",
			Slug:  "hexagonal-architecture-demystified-everything-you-need-to-know",
			Tags:  []TalkTag{"Hexagonal Arch", "Clean Arch", "DDD", "Distributed Systems"},
			Date:  "2023-09-05",
			Description: "Hexagonal architecture was a software design pattern that decoupled the applications core domain from its dependencies. " +
				"This made the application more flexible and easier to test, as well as made it easier to adapt the application to new requirements " +
				"or technologies. During the presentation, I delved into the principles of hexagonal architecture and saw how they were applied to " +
				"the development of a simple e-commerce microservice application. I also analyzed the advantages and challenges associated with " +
				"hexagonal architecture, providing insights on its implementation through a real-world example involving a Spring Boot application " +
				"with Domain-Driven Design (DDD) principles.",
			DemosList: []string{
				"https://github.com/miliariadnane/product-discount-service-hexagonal-architecture",
			},
			Slides: "https://docs.google.com/presentation/d/1aRHpDMAcnK5wUJhduYWKhapjGCC00TN2-AlU_M-qILs/edit?usp=sharing",
			Banner: "/static/talks/transperfect-talk/hexagonal-architecture.png",
		},
		{
			Title: "My Journey Into The World Of Microservices Using Spring Cloud",
			Slug:  "my-journey-into-the-world-of-microservices-using-spring-cloud",
			Tags:  []TalkTag{"Spring Cloud", "Microservices"},
			Date:  "2022-12-21",
			Description: "In this talk turn around architecture of microservices and the different concepts surrounding this pattern. So, the talk " +
				"will cover concepts such as service discovery, load balancing, asynchronous massaging and a few more concepts. The presentation " +
				"will include a demo of a side project that I worked on it a few months ago, where I will share my journey in building simple " +
				"e-commerce microserivce app from scratch using spring cloud, kubernetes and AWS.",
			WatchTalk: "https://www.youtube.com/watch?v=HzNY9xoL_sA&t=5s&ab_channel=GeeksBlaBla",
			DemosList: []string{
				"https://github.com/miliariadnane/demo-microservices",
				"https://github.com/miliariadnane/advanced-microservices",
			},
			Slides: "https://docs.google.com/presentation/d/12FpMlcLw_ULQztTCN5ym7oqBYKpPoMynh5DTbaHf_Fw/edit?usp=sharing",
			Banner: "/static/talks/blablaconf-microservices/blablaconf-microservices-talk.png",
		},
		{
			Title: "Why soft skills are important in your career ?",
			Slug:  "why-soft-skills-are-important-in-your-career",
			Tags:  []TalkTag{"Soft Skills"},
			Date:  "2020-07-21",
			Description: "This talk is about the importance of soft skills in your career and how to improve them. I will share my experience and " +
				"my journey in improving my soft skills and how it helped me to grow in my career.",
			WatchTalk: "https://youtu.be/88pff7BfZ14",
			DemosList: []string{""},
			Slides:    "https://docs.google.com/presentation/d/1wP_l3atFE0R-PoLUoJwSxAphSHZmD-l0vaQ-CmNMHks/edit?usp=sharing",
			Banner:    "/static/talks/soft-skills-for-your-career/soft-skills-for-your-career.png",
		},
	}
}
